package window

// Template is the chrome definition cloned for each new window. Templates
// come from configuration or are built in code by the host.
type Template struct {
	Title           string `yaml:"title"`
	Theme           string `yaml:"theme"`
	Top             int    `yaml:"top"`
	Left            int    `yaml:"left"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	MinWidth        int    `yaml:"min_width"`
	MinHeight       int    `yaml:"min_height"`
	ShowFooter      bool   `yaml:"show_footer"`
	HideCloseButton bool   `yaml:"hide_close_button"`
	RibbonColor     string `yaml:"ribbon_color"`
}

// Normalize fills zero-valued fields with sane defaults so a sparse
// template still produces a usable window.
func (t *Template) Normalize(defaultMinWidth, defaultMinHeight int) {
	if t.Width <= 0 {
		t.Width = 40
	}
	if t.Height <= 0 {
		t.Height = 12
	}
	if t.MinWidth <= 0 {
		t.MinWidth = defaultMinWidth
	}
	if t.MinHeight <= 0 {
		t.MinHeight = defaultMinHeight
	}
}
