package editor

// Params are the construction parameters of a Timeline. Zero values take the
// defaults described at each field.
type Params struct {
	Fonts   *Fonts      // default: DefaultTheme().Fonts
	Colors  *Colors     // default: DefaultTheme().Colors
	Images  ImageAssets // default: NoImages()
	Cursors Cursors     // default: DefaultTheme().Cursors

	Width  int     // default: the available width of the mount
	Length float64 // length of the media in seconds, default 1800
	Start  float64 // start of the visible window, default 0
	End    float64 // end of the visible window, default 60

	Multi      bool  // allow selecting several segments at once
	AutoSelect *bool // select segments when they are moved or created, default true
	Tool       ToolMode

	Stack  CommandStack // default: NewHistory()
	Clock  Clock        // default: BrokerClock(Broker)
	Loader TrackLoader  // default: &FileLoader{}
	Broker *Broker      // default: NewBroker()

	// ExportName is a text/template, with sprig functions, rendering the
	// file name of an exported track. The dot is an ExportNameData. Default
	// "{{ .ID }}.{{ .Ext }}".
	ExportName string
}

const (
	defaultLength     = 1800
	defaultWindow     = 60
	defaultExportName = "{{ .ID }}.{{ .Ext }}"
)

// Bool returns a pointer to v, for the optional boolean params.
func Bool(v bool) *bool { return &v }
