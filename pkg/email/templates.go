package email

// ownerEmailHTML is the HTML template for the notification sent to the site owner
const ownerEmailHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #8b4513, #d2691e); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #8b4513; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #8b4513; }
        .footer { margin-top: 20px; padding-top: 15px; border-top: 1px solid #ddd; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>📧 New Contact Form Submission</h2>
            <p>Someone has reached out through your {{.SiteName}}!</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.SubjectHTML}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
            <div class="footer">
                <p><strong>Submission Details:</strong></p>
                <p>Time: {{.Time}}</p>
                <p>IP Address: {{.SourceIP}}</p>
                <p>User Agent: {{.UserAgent}}</p>
            </div>
        </div>
    </div>
</body>
</html>`

const ownerEmailText = `New Contact Form Submission
============================

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}

Message:
--------
{{.Message}}

Submission Details:
------------------
Time: {{.Time}}
IP Address: {{.SourceIP}}
User Agent: {{.UserAgent}}

You can reply directly to this email to respond to {{.Name}}.
`

const confirmationEmailHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Message Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #8b4513, #d2691e); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
        .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
        .message { background: white; padding: 20px; border-radius: 5px; margin: 20px 0; }
        .footer { text-align: center; margin-top: 20px; padding-top: 15px; border-top: 1px solid #ddd; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>✅ Message Received</h2>
            <p>Thank you for reaching out!</p>
        </div>
        <div class="content">
            <div class="message">
                <p>Dear {{.Name}},</p>
                <p>Thank you for your message regarding "<strong>{{.SubjectHTML}}</strong>". I have received your correspondence and will review it carefully.</p>
                <p>I typically respond to inquiries within 24-48 hours during business days. If your matter is urgent, please don't hesitate to reach out through other channels.</p>
                <p>I look forward to the possibility of working together!</p>
                <p>Best regards,<br><strong>{{.OwnerName}}</strong>{{if .OwnerTitle}}<br>{{.OwnerTitle}}{{end}}</p>
            </div>
        </div>
        <div class="footer">
            <p>This is an automated confirmation message. Please do not reply to this email.</p>
            <p>© {{.Year}} {{.OwnerName}}. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`

const confirmationEmailText = `Message Received - Thank You for Contacting Me
===============================================

Dear {{.Name}},

Thank you for your message regarding "{{.Subject}}". I have received your correspondence and will review it carefully.

I typically respond to inquiries within 24-48 hours during business days. If your matter is urgent, please don't hesitate to reach out through other channels.

I look forward to the possibility of working together!

Best regards,
{{.OwnerName}}
{{- if .OwnerTitle}}
{{.OwnerTitle}}
{{- end}}

---
This is an automated confirmation message. Please do not reply to this email.
© {{.Year}} {{.OwnerName}}. All rights reserved.
`
