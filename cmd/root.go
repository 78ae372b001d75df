package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/lang"
	"github.com/jsphweid/tertian/logging"
	"github.com/spf13/cobra"
)

var langName string

var rootCmd = &cobra.Command{
	Use:   "tertian",
	Short: "Names intervals and tertian chords",
	Long: `tertian names the interval between two pitches and the quality and
inversion of triads and seventh chords. Pitches are written as a letter,
an optional alteration marker and an optional register digit, e.g. "c1",
"#f", "mB".`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&langName, "lang", constants.GetLanguage(), "label language (en, zh)")
}

func initConfig() {
	envErr := loadEnv()

	level, err := logging.ParseLevel(constants.GetLogLevel())
	if err != nil {
		logging.Warn("falling back to info logging", logging.Fields{"reason": err.Error()})
		level = logging.InfoLevel
	}
	logging.SetLevel(level)

	if envErr != nil {
		logging.Debug("ignoring env file", logging.Fields{"reason": envErr.Error()})
	}
}

// loadEnv loads .env, or the given files, into the environment. A missing
// file is not an error.
func loadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func locale() (lang.Locale, error) {
	return lang.Parse(langName)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
