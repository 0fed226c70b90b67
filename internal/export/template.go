package export

// reportTemplate mirrors the dashboard layout: header, grand total, per-
// category bar lists, inquiry examples and the closing commentary sections.
const reportTemplate = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<style>
  body { font-family: 'Malgun Gothic', 'Apple SD Gothic Neo', sans-serif; color: #1f2937; margin: 24px; }
  h1 { text-align: center; background: linear-gradient(to right, #60a5fa, #22d3ee); color: #fff; padding: 24px; border-radius: 12px; }
  h2 { color: #374151; border-bottom: 1px solid #e5e7eb; padding-bottom: 6px; }
  .grand { text-align: center; margin: 16px 0; }
  .grand .avg { font-size: 40px; font-weight: bold; color: #4f46e5; }
  .category { margin-bottom: 24px; page-break-inside: avoid; }
  .scale-note { font-size: 11px; color: #6b7280; }
  .item { margin: 6px 0; }
  .item .label { font-size: 12px; }
  .bar-bg { background: #f3f4f6; border-radius: 4px; height: 14px; width: 100%; }
  .bar { height: 14px; border-radius: 4px; }
  .score { font-size: 12px; font-weight: bold; margin-left: 6px; }
  .example { border: 1px solid #e5e7eb; border-radius: 8px; padding: 10px; margin: 8px 0; page-break-inside: avoid; }
  .example .tag { font-size: 11px; color: #6b7280; }
  .commentary p { line-height: 1.7; }
  .commentary .section { font-weight: bold; color: #4f46e5; }
</style>
</head>
<body>
  <h1>탐구역량 평가</h1>
  <div class="grand">
    <div>{{.StudentName}} — {{.Tagline}}</div>
    <div class="avg">{{.GrandAverage}} / 100</div>
    <div>원점수 총합: {{.GrandTotal}} / {{.GrandMax}}</div>
  </div>

  {{range .Categories}}
  <div class="category">
    <h2 style="color: {{.Accent}}">{{.Name}} <span class="scale-note">({{.ScaleNote}}, 평균 {{.Average}}점, {{.Total}}/{{.Max}})</span></h2>
    {{range .Items}}
    <div class="item">
      <span class="label">{{.Label}}</span><span class="score">{{.Score}} / {{.Max}}</span>
      <div class="bar-bg"><div class="bar" style="width: {{.WidthPercent}}%; background: {{.Color}};"></div></div>
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .Result.RepresentativeActivities}}
  <h2>전공 관련 대표 탐구활동</h2>
  {{range .Result.RepresentativeActivities}}
  <div class="example"><strong>{{.Title}}</strong><p>{{.Description}}</p></div>
  {{end}}
  {{end}}

  <h2>탐구역량 분석 예시</h2>
  {{range .Result.InquiryExcellentExamples}}
  <div class="example"><span class="tag">{{.Tag}}</span><br><strong>{{.Title}}</strong><p>{{.Description}}</p></div>
  {{end}}
  <div class="example"><span class="tag">{{.Result.InquiryImprovementExample.Tag}}</span><br>
    <strong>{{.Result.InquiryImprovementExample.Title}}</strong>
    <p>{{.Result.InquiryImprovementExample.Description}}</p>
  </div>

  <h2>탐구역량 총평</h2>
  <div class="commentary">
    <p><span class="section">[핵심 역량]</span> {{.Result.CoreCompetency}}</p>
    <p><span class="section">[주요 강점]</span> {{.Result.KeyStrengths}}</p>
    <p><span class="section">[보완점 및 제언]</span> {{.Result.Suggestions}}</p>
  </div>
</body>
</html>
`
