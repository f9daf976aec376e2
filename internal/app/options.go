package app

import (
	"errors"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/heartmarshall/define/internal/domain"
)

// Options are the command-line flags of define.
type Options struct {
	UseKey   string `long:"use-key" value-name:"KEY" description:"API key (overrides WORDNIK_API_KEY / WORDSAPI_KEY)"`
	Provider string `long:"provider" choice:"wordnik" choice:"wordsapi" choice:"freedict" description:"Dictionary provider (default from config: wordnik)"`
	Random   bool   `short:"r" long:"random" description:"Look up a random word"`
	WOTD     bool   `long:"wotd" description:"Look up the word of the day"`
	Max      *int   `long:"max" value-name:"N" description:"Maximum number of definitions, 0 for all (default 10)"`
	NoColour bool   `long:"no-colour" description:"Disable coloured output"`

	Phonetics bool `short:"p" long:"phonetics" description:"Show phonetic transcriptions"`
	Examples  bool `short:"e" long:"examples" description:"Show an example for each definition"`
	Synonyms  bool `short:"s" long:"synonyms" description:"Show synonyms"`
	Antonyms  bool `short:"a" long:"antonyms" description:"Show antonyms"`
	Syllables bool `short:"y" long:"syllables" description:"Show syllables"`
	Verbose   bool `short:"v" long:"verbose" description:"Show everything"`
	NoTypes   bool `long:"no-types" description:"Hide parts of speech"`
	JSON      bool `long:"json" description:"Print the result as JSON"`
	Version   bool `long:"version" description:"Print version and exit"`

	Args struct {
		Word string `positional-arg-name:"word"`
	} `positional-args:"yes"`
}

// errHelp is returned by parseOptions when --help was requested;
// the help text has already been written.
var errHelp = errors.New("help requested")

// parseOptions parses args into Options. Flag errors are configuration
// errors; --help yields the usage text and errHelp.
func parseOptions(args []string) (*Options, string, error) {
	var opts Options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "define"
	parser.Usage = "[OPTIONS] [word]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, flagsErr.Message, errHelp
		}
		return nil, "", domain.NewConfigError("", err.Error())
	}
	if len(rest) > 0 {
		return nil, "", domain.NewConfigError("", "unexpected arguments: "+strings.Join(rest, " "))
	}

	return &opts, "", nil
}

// mode picks the lookup mode from the flags.
func (o *Options) mode() (domain.LookupMode, error) {
	switch {
	case o.Random && o.WOTD:
		return "", domain.NewConfigError("", "--random and --wotd cannot be combined")
	case (o.Random || o.WOTD) && o.Args.Word != "":
		return "", domain.NewConfigError("", "a word cannot be combined with --random or --wotd")
	case o.Random:
		return domain.LookupModeRandom, nil
	case o.WOTD:
		return domain.LookupModeWordOfTheDay, nil
	case o.Args.Word == "":
		return "", domain.NewConfigError("", "no word given (pass a word, --random or --wotd)")
	}
	return domain.LookupModeWord, nil
}
