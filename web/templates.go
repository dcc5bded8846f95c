package web

const tmplHeader = `
<style>
.dash-head{font-family:sans-serif;padding:12px 16px}
.dash-head h1{font-size:22px;margin:0 0 4px}
.dash-head p{color:#555;margin:0 0 12px}
.filters{display:flex;gap:16px;flex-wrap:wrap;align-items:flex-start;background:#f6f8fa;padding:8px 12px;border-radius:6px;border:1px solid #d0d7de}
.filters label{display:block;font-size:12px;color:#57606a;margin-bottom:4px}
.filters select{min-width:220px;font-size:12px}
.filters button{background:#1f6feb;border:none;color:#fff;padding:4px 12px;border-radius:4px;cursor:pointer;font-size:12px;align-self:flex-end}
.dim{color:#8b949e;font-size:11px}
</style>
<div class="dash-head">
<h1>{{.Title}}</h1>
<p>Real-time Pageview and User Activity Insights</p>
<form class="filters" method="get" action="/">
<input type="hidden" name="submitted" value="1">
<div>
<label for="viewtime">Select Viewtime Range</label>
<select id="viewtime" name="viewtime" multiple size="8">
{{- range .Viewtime}}
<option value="{{.Label}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
</div>
<div>
<label for="day">Select Days of the Week</label>
<select id="day" name="day" multiple size="7">
{{- range .Weekdays}}
<option value="{{.Label}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
</div>
<button type="submit">Apply</button>
</form>
</div>
`

const tmplFooter = `
<style>
.dash-tables{display:flex;flex-wrap:wrap;gap:16px;padding:12px 16px;font-family:sans-serif}
.dash-tables details{width:380px;font-size:12px}
table.data{border-collapse:collapse;width:100%}
table.data th,table.data td{border-bottom:1px solid #d0d7de;padding:3px 6px;text-align:left}
</style>
<div class="dash-tables">
{{- range .Tables}}
<details><summary>Data</summary>
{{.}}
</details>
{{- end}}
</div>
<p class="dim dash-head">render {{.RenderID}}</p>
`
