package html

// ReportTemplate renders the fleet summary and the per-device table
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Interfaces Report - {{.GeneratedAt}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        header p {
            font-size: 1.1em;
            opacity: 0.9;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .summary h2 {
            color: #667eea;
            margin-bottom: 15px;
            font-size: 1.5em;
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin-top: 15px;
        }

        .stat-card {
            background: #f8f9fa;
            padding: 15px;
            border-radius: 6px;
            border-left: 4px solid #667eea;
        }

        .stat-card .label {
            font-size: 0.9em;
            color: #6c757d;
            margin-bottom: 5px;
        }

        .stat-card .value {
            font-size: 1.8em;
            font-weight: bold;
            color: #2c3e50;
        }

        .stat-card .percent {
            font-size: 0.9em;
            color: #6c757d;
        }

        .pattern {
            margin-top: 15px;
            font-family: 'Courier New', monospace;
            font-size: 0.85em;
            color: #6c757d;
            word-break: break-all;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 0.9em;
        }

        th {
            background: #f8f9fa;
            padding: 10px;
            text-align: left;
            font-weight: 600;
            color: #495057;
            border-bottom: 2px solid #dee2e6;
        }

        td {
            padding: 10px;
            border-bottom: 1px solid #e9ecef;
        }

        td.num {
            text-align: right;
            font-family: 'Courier New', monospace;
        }

        tr.alert td:first-child {
            color: #d32f2f;
            font-weight: bold;
        }

        .usage-high { color: #f93e3e; font-weight: bold; }
        .usage-mid { color: #fca130; }
        .usage-low { color: #49cc90; }

        .empty {
            text-align: center;
            padding: 40px;
            color: #6c757d;
        }

        footer {
            text-align: center;
            padding: 20px;
            color: #6c757d;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Interfaces Report</h1>
            <p>Generated on {{.GeneratedAt}}</p>
        </header>

        <div class="summary">
            <h2>Summary</h2>
            <div class="stats">
                <div class="stat-card">
                    <div class="label">Total Interfaces</div>
                    <div class="value">{{.Total}}</div>
                </div>
                {{range .Categories}}
                <div class="stat-card">
                    <div class="label">{{.Category}}</div>
                    <div class="value">{{.Count}}</div>
                    <div class="percent">{{pct .Percent}}%</div>
                </div>
                {{end}}
                <div class="stat-card">
                    <div class="label">admin-down</div>
                    <div class="value">{{.AdminDown}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">err-disabled</div>
                    <div class="value">{{.ErrDisabled}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Excluded Interfaces</div>
                    <div class="value">{{.Excluded}}</div>
                </div>
            </div>
            {{if .Pattern}}<div class="pattern">Exclusion pattern: {{.Pattern}}</div>{{end}}
        </div>

        <div class="summary">
            <h2>Interfaces per Device</h2>
            {{if .Devices}}
            <table>
                <thead>
                    <tr>
                        {{range .Headers}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range .Devices}}
                    <tr{{if .ErrDisabled}} class="alert"{{end}}>
                        <td>{{.Hostname}}</td>
                        <td>{{.SN}}</td>
                        <td>{{.SiteName}}</td>
                        <td class="num">{{.Total}}</td>
                        <td class="num">{{.UpUp}}</td>
                        <td class="num">{{.DownDown}}</td>
                        <td class="num">{{.UpDown}}</td>
                        <td class="num">{{.Unknown}}</td>
                        <td class="num">{{.AdminDown}}</td>
                        <td class="num">{{.ErrDisabled}}</td>
                        <td class="num {{usageClass .Utilisation}}">{{pct .Utilisation}}</td>
                        <td class="num">{{pct .Availability}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
            {{else}}
            <div class="empty">No interfaces left after exclusion.</div>
            {{end}}
        </div>

        <footer>
            <p>Generated by intf-report</p>
        </footer>
    </div>
</body>
</html>
`
