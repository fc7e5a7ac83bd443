package emailtemplate

const htmlBody = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Confirmação de Inscrição</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;color:#333333;">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color:#f4f4f4;padding:24px 0;">
<tr><td align="center">
<table role="presentation" width="600" cellspacing="0" cellpadding="0" style="max-width:600px;background-color:#ffffff;border-radius:8px;overflow:hidden;">
<tr><td style="background-color:#0b5394;padding:24px;text-align:center;">
<img src="{{.LogoURL}}" alt="Logo" style="max-height:64px;display:block;margin:0 auto 12px auto;">
<h1 style="margin:0;font-size:22px;color:#ffffff;">Inscrição Confirmada!</h1>
</td></tr>
<tr><td style="padding:24px;">
<p style="margin:0 0 16px 0;font-size:16px;">Olá, <strong>{{.CustomerName}}</strong>!</p>
<p style="margin:0 0 16px 0;font-size:15px;line-height:1.5;">Recebemos a confirmação do seu pagamento. Abaixo estão os detalhes da sua inscrição.</p>

<h2 style="margin:24px 0 8px 0;font-size:18px;color:#0b5394;border-bottom:2px solid #0b5394;padding-bottom:4px;">Resumo do Pedido</h2>
<table role="presentation" width="100%" cellspacing="0" cellpadding="4" style="font-size:14px;">
<tr><td style="color:#666666;">Pedido</td><td style="text-align:right;"><strong>#{{.ShortID}}</strong></td></tr>
<tr><td style="color:#666666;">Data</td><td style="text-align:right;">{{date .OrderDate}}</td></tr>
<tr><td style="color:#666666;">Passeio</td><td style="text-align:right;">{{.ProductName}}</td></tr>
<tr><td style="color:#666666;">Quantidade</td><td style="text-align:right;">{{.Quantity}}</td></tr>
<tr><td style="color:#666666;">Valor unitário</td><td style="text-align:right;">{{money .UnitPrice}}</td></tr>
<tr><td style="color:#666666;">Forma de pagamento</td><td style="text-align:right;">{{payment .PaymentMethod}}</td></tr>
<tr><td style="font-size:16px;padding-top:8px;"><strong>Total</strong></td><td style="text-align:right;font-size:16px;padding-top:8px;"><strong>{{money .TotalPrice}}</strong></td></tr>
</table>
{{- if .Participants}}

<h2 style="margin:24px 0 8px 0;font-size:18px;color:#0b5394;border-bottom:2px solid #0b5394;padding-bottom:4px;">Participantes</h2>
{{- range $i, $p := .Participants}}
<div style="background-color:#f9f9f9;border-left:4px solid #0b5394;padding:12px;margin:0 0 12px 0;font-size:14px;line-height:1.5;">
<p style="margin:0 0 4px 0;"><strong>{{$p.Name}}</strong></p>
{{- if $p.BirthDate}}
<p style="margin:0;">Data de nascimento: {{birth $p.BirthDate}}</p>
{{- end}}
{{- if $p.Document}}
<p style="margin:0;">Documento: {{$p.Document}}</p>
{{- end}}
{{- if $p.Grade}}
<p style="margin:0;">Série/Ano: {{$p.Grade}}</p>
{{- end}}
{{- if $p.Class}}
<p style="margin:0;">Turma: {{$p.Class}}</p>
{{- end}}
{{- if $p.CareNotes}}
<p style="margin:0;color:#b45f06;">Alergias/Cuidados: {{$p.CareNotes}}</p>
{{- end}}
</div>
{{- end}}
{{- end}}
{{- with .Billing}}

<h2 style="margin:24px 0 8px 0;font-size:18px;color:#0b5394;border-bottom:2px solid #0b5394;padding-bottom:4px;">Responsável Financeiro</h2>
<p style="margin:0;font-size:14px;line-height:1.6;">
{{- if .Name}}
<strong>{{.Name}}</strong><br>
{{- end}}
{{- if .Street}}
{{.Street}}{{if .Number}}, {{.Number}}{{end}}{{if .Complement}} - {{.Complement}}{{end}}<br>
{{- end}}
{{- if or .City .State}}
{{cityState .}}<br>
{{- end}}
{{- if .PostalCode}}
CEP: {{.PostalCode}}<br>
{{- end}}
{{- if .Phone}}
Telefone: {{.Phone}}<br>
{{- end}}
{{- if .Email}}
E-mail: {{.Email}}
{{- end}}
</p>
{{- end}}
{{- if .Notes}}

<h2 style="margin:24px 0 8px 0;font-size:18px;color:#0b5394;border-bottom:2px solid #0b5394;padding-bottom:4px;">Observações</h2>
<p style="margin:0;font-size:14px;line-height:1.5;">{{.Notes}}</p>
{{- end}}

<p style="margin:24px 0 0 0;font-size:14px;line-height:1.5;">Em caso de dúvidas, responda este e-mail ou entre em contato com nossa equipe.</p>
</td></tr>
<tr><td style="background-color:#eeeeee;padding:16px;text-align:center;font-size:12px;color:#888888;">
&copy; {{.Year}} Todos os direitos reservados.
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`

const textBody = `Inscrição Confirmada!

Olá, {{.CustomerName}}!

Recebemos a confirmação do seu pagamento. Abaixo estão os detalhes da sua inscrição.

RESUMO DO PEDIDO
Pedido: #{{.ShortID}}
Data: {{date .OrderDate}}
Passeio: {{.ProductName}}
Quantidade: {{.Quantity}}
Valor unitário: {{money .UnitPrice}}
Forma de pagamento: {{payment .PaymentMethod}}
Total: {{money .TotalPrice}}
{{- if .Participants}}

PARTICIPANTES
{{- range $i, $p := .Participants}}
- {{$p.Name}}
{{- if $p.BirthDate}}
  Data de nascimento: {{birth $p.BirthDate}}
{{- end}}
{{- if $p.Document}}
  Documento: {{$p.Document}}
{{- end}}
{{- if $p.Grade}}
  Série/Ano: {{$p.Grade}}
{{- end}}
{{- if $p.Class}}
  Turma: {{$p.Class}}
{{- end}}
{{- if $p.CareNotes}}
  Alergias/Cuidados: {{$p.CareNotes}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Billing}}

RESPONSÁVEL FINANCEIRO
{{- if .Name}}
{{.Name}}
{{- end}}
{{- if .Street}}
{{.Street}}{{if .Number}}, {{.Number}}{{end}}{{if .Complement}} - {{.Complement}}{{end}}
{{- end}}
{{- if or .City .State}}
{{cityState .}}
{{- end}}
{{- if .PostalCode}}
CEP: {{.PostalCode}}
{{- end}}
{{- if .Phone}}
Telefone: {{.Phone}}
{{- end}}
{{- if .Email}}
E-mail: {{.Email}}
{{- end}}
{{- end}}
{{- if .Notes}}

OBSERVAÇÕES
{{.Notes}}
{{- end}}

Em caso de dúvidas, responda este e-mail ou entre em contato com nossa equipe.

© {{.Year}} Todos os direitos reservados.
`
