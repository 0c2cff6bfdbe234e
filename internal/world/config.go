package world

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"folio/internal/geom"
	"folio/internal/model"
)

// Config mirrors the style sections of folio.toml. Zero values mean
// "keep the built-in default".
type Config struct {
	Page    PageConfig    `toml:"page"`
	Text    TextConfig    `toml:"text"`
	Heading HeadingConfig `toml:"heading"`
	Outline OutlineConfig `toml:"outline"`
}

type PageConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

type TextConfig struct {
	Size    float64 `toml:"size"`
	Leading float64 `toml:"leading"`
	Lang    string  `toml:"lang"`
}

type HeadingConfig struct {
	// Numbering is a pattern like "1.1." or empty for unnumbered
	// headings.
	Numbering string `toml:"numbering"`
}

type OutlineConfig struct {
	// Title is "auto", "none" or a literal title text.
	Title  string `toml:"title"`
	Depth  int    `toml:"depth"`
	Indent bool   `toml:"indent"`
	Fill   string `toml:"fill"`
}

// LoadLibrary reads a folio.toml and layers it over the built-in
// defaults.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("world: parsing %q: %w", path, err)
	}
	return cfg.Library()
}

// Library converts the config into a root style library.
func (cfg Config) Library() (*Library, error) {
	base := DefaultLibrary()
	props := append([]model.Property(nil), base.Styles.Properties()...)

	if cfg.Page.Width > 0 {
		props = append(props, model.Set(model.KindPage, "width", model.Length(geom.Pt(cfg.Page.Width))))
	}
	if cfg.Page.Height > 0 {
		props = append(props, model.Set(model.KindPage, "height", model.Length(geom.Pt(cfg.Page.Height))))
	}
	if cfg.Page.Margin > 0 {
		props = append(props, model.Set(model.KindPage, "margin", model.Length(geom.Pt(cfg.Page.Margin))))
	}
	if cfg.Text.Size > 0 {
		props = append(props, model.Set(model.KindText, "size", model.Length(geom.Pt(cfg.Text.Size))))
	}
	if cfg.Text.Leading > 0 {
		props = append(props, model.Set(model.KindText, "leading", model.Float(cfg.Text.Leading)))
	}
	lang := base.Language
	if cfg.Text.Lang != "" {
		tag, err := language.Parse(cfg.Text.Lang)
		if err != nil {
			return nil, fmt.Errorf("world: invalid language %q: %w", cfg.Text.Lang, err)
		}
		lang = tag
		props = append(props, model.Set(model.KindText, "lang", model.Str(cfg.Text.Lang)))
	}
	if cfg.Heading.Numbering != "" {
		props = append(props, model.Set(model.KindHeading, "numbering", model.Str(cfg.Heading.Numbering)))
	}
	switch cfg.Outline.Title {
	case "", "auto":
	case "none":
		props = append(props, model.Set(model.KindOutline, "title", model.None()))
	default:
		props = append(props, model.Set(model.KindOutline, "title", model.Str(cfg.Outline.Title)))
	}
	if cfg.Outline.Depth > 0 {
		props = append(props, model.Set(model.KindOutline, "depth", model.Int(int64(cfg.Outline.Depth))))
	}
	if cfg.Outline.Indent {
		props = append(props, model.Set(model.KindOutline, "indent", model.Bool(true)))
	}
	if cfg.Outline.Fill != "" {
		props = append(props, model.Set(model.KindOutline, "fill", model.Str(cfg.Outline.Fill)))
	}

	return &Library{Styles: model.NewStyleMap(props...), Language: lang}, nil
}
