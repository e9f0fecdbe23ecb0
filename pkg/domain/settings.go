package domain

// EditorSettings holds the persisted editor preferences loaded at bootstrap.
type EditorSettings struct {
	VimMode      bool    `json:"vimMode" koanf:"vim_mode" yaml:"vim_mode"`
	FontSize     int     `json:"fontSize" koanf:"font_size" yaml:"font_size"`
	FontFamily   string  `json:"fontFamily" koanf:"font_family" yaml:"font_family"`
	LineHeight   float64 `json:"lineHeight" koanf:"line_height" yaml:"line_height"`
	AutoComplete bool    `json:"autoComplete" koanf:"auto_complete" yaml:"auto_complete"`
	Prettify     bool    `json:"prettify" koanf:"prettify" yaml:"prettify"`
	Zen          bool    `json:"zen" koanf:"zen" yaml:"zen"`
}
