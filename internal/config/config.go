package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file base name looked up in the search path.
const FileName = "diary"

// EnvPrefix prefixes environment overrides, e.g. DIARY_ENTRIES_DIR or DIARY_SITE_AUTHOR.
const EnvPrefix = "DIARY"

// Viper keys bound to command-line flags.
const (
	KeyEntriesDir = "entries_dir"
	KeyOutputDir  = "output_dir"
	KeyExtension  = "extension"
	KeyDebug      = "debug"
)

// Config is the full generator configuration.
type Config struct {
	// EntriesDir holds the <YYYY-MM-DD><Extension> source files.
	EntriesDir string `mapstructure:"entries_dir" yaml:"entries_dir" json:"entries_dir"`

	// OutputDir is the diary root: diaryLanding.html and the year directories go here.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir"`

	// Extension selects entry files, including the leading dot.
	Extension string `mapstructure:"extension" yaml:"extension" json:"extension"`

	Debug bool `mapstructure:"debug" yaml:"debug" json:"debug"`

	Site Site `mapstructure:"site" yaml:"site" json:"site"`
}

// Site holds the text and links shared by every generated page.
type Site struct {
	Author      string `mapstructure:"author" yaml:"author" json:"author"`
	Title       string `mapstructure:"title" yaml:"title" json:"title"`
	Description string `mapstructure:"description" yaml:"description" json:"description"`

	// Menu hrefs are relative to the site root, one level above OutputDir.
	Menu []Link `mapstructure:"menu" yaml:"menu" json:"menu"`

	Contact Contact `mapstructure:"contact" yaml:"contact" json:"contact"`
	Socials []Link  `mapstructure:"socials" yaml:"socials,omitempty" json:"socials,omitempty"`
}

// Link is a labelled href. Icon is a theme icon class for social links.
type Link struct {
	Label string `mapstructure:"label" yaml:"label" json:"label"`
	Href  string `mapstructure:"href" yaml:"href" json:"href"`
	Icon  string `mapstructure:"icon" yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Contact is rendered on the landing page when any field is set.
type Contact struct {
	Email   string   `mapstructure:"email" yaml:"email,omitempty" json:"email,omitempty"`
	Phone   string   `mapstructure:"phone" yaml:"phone,omitempty" json:"phone,omitempty"`
	Address []string `mapstructure:"address" yaml:"address,omitempty" json:"address,omitempty"`

	// FormAction, when set, adds a name/email/message form posting to it.
	FormAction string `mapstructure:"form_action" yaml:"form_action,omitempty" json:"form_action,omitempty"`
}

// IsZero reports whether no contact detail is configured.
func (c Contact) IsZero() bool {
	return c.Email == "" && c.Phone == "" && len(c.Address) == 0 && c.FormAction == ""
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		EntriesDir: "entries",
		OutputDir:  ".",
		Extension:  ".txt",
		Site: Site{
			Title:       "My Diary",
			Description: "A personal space for thoughts, reflections, and daily observations. My journey captured in words, organized by time.",
			Menu: []Link{
				{Label: "Home", Href: "index.html"},
				{Label: "Learnings", Href: "learnings/learningsLanding.html"},
				{Label: "Thoughts", Href: "diary/diaryLanding.html"},
			},
		},
	}
}

// Validate normalizes the extension and checks required paths.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.EntriesDir) == "" {
		missing = append(missing, KeyEntriesDir)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		missing = append(missing, KeyOutputDir)
	}
	if strings.TrimSpace(c.Extension) == "" {
		missing = append(missing, KeyExtension)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	return nil
}

// New returns a viper instance carrying the defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault(KeyEntriesDir, d.EntriesDir)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyExtension, d.Extension)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault("site.author", d.Site.Author)
	v.SetDefault("site.title", d.Site.Title)
	v.SetDefault("site.description", d.Site.Description)
	v.SetDefault("site.menu", linkMaps(d.Site.Menu))
	v.SetDefault("site.contact.email", "")
	v.SetDefault("site.contact.phone", "")
	v.SetDefault("site.contact.address", []string{})
	v.SetDefault("site.socials", []map[string]any{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file into v and decodes the result.
// An explicit file must exist; otherwise diary.yaml is searched in the
// working directory and Dir(), and a missing file is not an error.
// The returned path is the file actually used, or empty.
func Load(v *viper.Viper, file string) (*Config, string, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, v.ConfigFileUsed(), nil
}

func linkMaps(links []Link) []map[string]any {
	out := make([]map[string]any, 0, len(links))
	for _, l := range links {
		out = append(out, map[string]any{"label": l.Label, "href": l.Href, "icon": l.Icon})
	}
	return out
}
