package dashboard

import (
	_ "embed"
	"html/template"
)

//go:embed templates/index.html
var indexHTML string

var indexPage = template.Must(template.New("index").Parse(indexHTML))
