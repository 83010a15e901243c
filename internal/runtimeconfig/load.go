package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SUPPORTDOCS_CONTENT_DIR.
const EnvPrefix = "SUPPORTDOCS"

// PlainLogFormat selects the dependency-free console provider.
const PlainLogFormat = "plain"

const (
	keyContentDir   = "content_dir"
	keyOutput       = "output"
	keyExtension    = "ext"
	keyFragmentsDir = "fragments_dir"
	keyProduct      = "product"
	keyPublicURL    = "public_url"
	keyDescriptions = "descriptions"
	keyLogProvider  = "log.provider"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
	keyLogSource    = "log.add_source"
	keyLogFocus     = "log.focus"
)

// flagKeys maps CLI flag names onto configuration keys.
var flagKeys = map[string]string{
	"content-dir":   keyContentDir,
	"output":        keyOutput,
	"ext":           keyExtension,
	"fragments-dir": keyFragmentsDir,
	"product":       keyProduct,
	"public-url":    keyPublicURL,
	"descriptions":  keyDescriptions,
	"log-level":     keyLogLevel,
	"log-format":    keyLogFormat,
}

// RegisterFlags declares the configuration flags on flags. Defaults are left
// empty so unset flags never shadow env or file values.
func RegisterFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()
	flags.String("content-dir", "", fmt.Sprintf("content root to compile (default %q)", defaults.ContentDir))
	flags.String("output", "", "output file (default <content-dir>/../marketing/support-docs.txt)")
	flags.String("ext", "", fmt.Sprintf("source file extension (default %q)", defaults.Extension))
	flags.String("fragments-dir", "", fmt.Sprintf("root-level directory of reusable fragments to skip (default %q)", defaults.FragmentsDir))
	flags.String("product", "", fmt.Sprintf("product name used in the document header (default %q)", defaults.ProductName))
	flags.String("public-url", "", "public URL the artifact is served from, echoed in the summary")
	flags.Bool("descriptions", false, "include front matter descriptions in section headers")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "log format: console, json, pretty, plain")
}

// Load resolves configuration with precedence flags > environment > config
// file > defaults. configFile is optional; when empty a supportdocs.yaml in
// the working directory is used if present.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return Config{}, err
	}
	if err := readConfigFile(v, configFile); err != nil {
		return Config{}, err
	}

	cfg := Config{
		ContentDir:          v.GetString(keyContentDir),
		OutputPath:          v.GetString(keyOutput),
		Extension:           v.GetString(keyExtension),
		FragmentsDir:        v.GetString(keyFragmentsDir),
		ProductName:         v.GetString(keyProduct),
		PublicURL:           v.GetString(keyPublicURL),
		IncludeDescriptions: v.GetBool(keyDescriptions),
		Logging: LoggingConfig{
			Provider:  v.GetString(keyLogProvider),
			Level:     v.GetString(keyLogLevel),
			Format:    v.GetString(keyLogFormat),
			AddSource: v.GetBool(keyLogSource),
			Focus:     v.GetStringSlice(keyLogFocus),
		},
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Logging.Format), PlainLogFormat) {
		cfg.Logging.Provider = "console"
		cfg.Logging.Format = ""
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault(keyContentDir, cfg.ContentDir)
	v.SetDefault(keyOutput, cfg.OutputPath)
	v.SetDefault(keyExtension, cfg.Extension)
	v.SetDefault(keyFragmentsDir, cfg.FragmentsDir)
	v.SetDefault(keyProduct, cfg.ProductName)
	v.SetDefault(keyPublicURL, cfg.PublicURL)
	v.SetDefault(keyDescriptions, cfg.IncludeDescriptions)
	v.SetDefault(keyLogProvider, cfg.Logging.Provider)
	v.SetDefault(keyLogLevel, cfg.Logging.Level)
	v.SetDefault(keyLogFormat, cfg.Logging.Format)
	v.SetDefault(keyLogSource, cfg.Logging.AddSource)
	v.SetDefault(keyLogFocus, cfg.Logging.Focus)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("supportdocs config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

func readConfigFile(v *viper.Viper, explicitPath string) error {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("supportdocs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && explicitPath == "" {
			return nil
		}
		return fmt.Errorf("supportdocs config: read %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}
