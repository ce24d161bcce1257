// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"html/template"
	"io"
	"strings"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

const htmlTimeFormat = "2006-01-02 15:04:05 MST"

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": func(names []string) string { return strings.Join(names, ", ") },
}).Parse(`<html>
<head>
  <meta charset="UTF-8" />
  <title>GitHub Repositories of {{.Handle}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
    th { background-color: #f4f4f4; }
    footer { margin-top: 20px; color: #666; font-size: 0.85em; }
  </style>
</head>
<body>
<h1>Public Repositories of GitHub User: {{.Handle}}</h1>
<table>
  <thead>
    <tr>
      <th>Name</th>
      <th>URL</th>
      <th>Description</th>
      <th>Top Language</th>
      <th>Tags</th>
    </tr>
  </thead>
  <tbody>
{{- range .Repositories}}
    <tr>
      <td>{{.Name}}</td>
      <td><a href="{{.URL}}" target="_blank">{{.URL}}</a></td>
      <td>{{.Description}}</td>
      <td>{{.TopLanguage}}</td>
      <td>{{join .Tags}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
<footer>Generated {{.Generated}}</footer>
</body>
</html>
`))

// HTMLRenderer writes a static table report. It is the one format that
// carries a generation timestamp, in its footer.
type HTMLRenderer struct{}

// Extension implements Renderer.
func (HTMLRenderer) Extension() string { return "html" }

// Render implements Renderer.
func (HTMLRenderer) Render(w io.Writer, rep *Report) error {
	data := struct {
		Handle       string
		Repositories []github.Summary
		Generated    string
	}{
		Handle:       rep.Handle,
		Repositories: rep.Repositories,
		Generated:    rep.Generated.Format(htmlTimeFormat),
	}
	return htmlTmpl.Execute(w, data)
}
