package config

import "github.com/spf13/viper"

var (
	KeyTrackDirectory = "track.directory"
	KeyRecursive      = "track.recursive"
	KeyOutputFormat   = "output.format"
	KeyLocale         = "output.locale"
	KeyServeAddress   = "serve.address"
)

func init() {
	SetDefaults()
}

// SetDefaults registers the default of every key.
func SetDefaults() {
	viper.SetDefault(KeyOutputFormat, "text")
	viper.SetDefault(KeyLocale, "en_US")
	viper.SetDefault(KeyServeAddress, ":8000")
	viper.SetDefault(KeyRecursive, false)
}

func HasTrackDirectory() bool {
	return viper.GetString(KeyTrackDirectory) != ""
}

func TrackDirectory() string {
	return viper.GetString(KeyTrackDirectory)
}

func Recursive() bool {
	return viper.GetBool(KeyRecursive)
}

func OutputFormat() string {
	return viper.GetString(KeyOutputFormat)
}

func Locale() string {
	return viper.GetString(KeyLocale)
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

func GPXExtensions() []string {
	return []string{".gpx"}
}
