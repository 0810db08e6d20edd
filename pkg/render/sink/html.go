package sink

import (
	"bytes"
	"html/template"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/render/figure"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Document defaults.
const (
	DefaultPageTitle = "Multiplex Graph with Matrix"
	DefaultHeading   = "Multiplex Graph Visualization"

	// DefaultPlotlyURL pins an exact plotly version. A floating "latest"
	// URL would make identical inputs render differently over time.
	DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

const docTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.PageTitle}}</title>
  <script src="{{.PlotlyURL}}"></script>
</head>
<body>
  <h1>{{.Heading}}</h1>
  <div id="{{.DivID}}" class="plotly-graph-div"></div>
  <script type="text/javascript">
    (function() {
      var fig = {{.Figure}};
      Plotly.newPlot({{.DivID}}, fig.data, fig.layout, {responsive: true});
    })();
  </script>
  {{.Tables}}
</body>
</html>
`

var docTmpl = template.Must(template.New("document").Parse(docTemplate))

// =============================================================================
// RenderHTML - Document Assembly
// =============================================================================

// HTMLOption configures document rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	pageTitle string
	heading   string
	plotlyURL string
}

// WithHTMLPageTitle sets the document's <title>.
func WithHTMLPageTitle(t string) HTMLOption { return func(r *htmlRenderer) { r.pageTitle = t } }

// WithHTMLHeading sets the <h1> above the figure.
func WithHTMLHeading(h string) HTMLOption { return func(r *htmlRenderer) { r.heading = h } }

// WithHTMLPlotlyURL overrides the plotly script URL, e.g. to point at a
// vendored copy for offline viewing.
func WithHTMLPlotlyURL(u string) HTMLOption { return func(r *htmlRenderer) { r.plotlyURL = u } }

type docData struct {
	PageTitle string
	Heading   string
	PlotlyURL string
	DivID     string
	Figure    template.JS
	Tables    template.HTML
}

// RenderHTML assembles the self-contained document: plotly loaded from the
// script URL, the figure mounted into a div, and the matrix tables below.
// A nil or empty tables fragment yields a figure-only document.
//
// The div id is derived from the figure content, so re-rendering the same
// graph reproduces the document byte for byte.
func RenderHTML(fig figure.Figure, tables []byte, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		pageTitle: DefaultPageTitle,
		heading:   DefaultHeading,
		plotlyURL: DefaultPlotlyURL,
	}
	for _, opt := range opts {
		opt(&r)
	}

	figJSON, err := json.Marshal(fig)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal figure")
	}

	var buf bytes.Buffer
	err = docTmpl.Execute(&buf, docData{
		PageTitle: r.pageTitle,
		Heading:   r.heading,
		PlotlyURL: r.plotlyURL,
		DivID:     divID(figJSON),
		Figure:    template.JS(figJSON),
		Tables:    template.HTML(tables),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "execute document template")
	}
	return buf.Bytes(), nil
}

// divID names the plotly mount point with a UUID derived from the figure
// bytes. SHA1-based so identical figures share an id and distinct figures
// on one page cannot collide.
func divID(figJSON []byte) string {
	return "layerstack-" + uuid.NewSHA1(uuid.NameSpaceURL, figJSON).String()
}
