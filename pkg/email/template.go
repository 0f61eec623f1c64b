package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template 邮件模板
type Template struct {
	tmpl *template.Template
}

// NewTemplate 从 HTML 字符串创建模板
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render 渲染模板
func (t *Template) Render(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

// SendWithTemplate 使用模板发送邮件
func (c *Client) SendWithTemplate(from string, to string, subject string, tmpl *Template, data interface{}) error {
	body, err := tmpl.Render(data)
	if err != nil {
		return err
	}
	return c.SendHTML(from, to, subject, body)
}

// 预定义常用邮件模板

// CommentNotificationTemplate 新评论通知邮件模板
const CommentNotificationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2196F3; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .comment { background-color: #fff; border-left: 4px solid #2196F3; padding: 12px;
                   margin: 20px 0; font-style: italic; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>文章有新评论</h1>
        </div>
        <div class="content">
            <p>您好，</p>
            <p><strong>{{.CommenterName}}</strong> 评论了文章《{{.PostTitle}}》：</p>
            <div class="comment">{{.CommentText}}</div>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复。</p>
        </div>
    </div>
</body>
</html>
`

// CommentNotificationData 评论通知模板数据
type CommentNotificationData struct {
	CommenterName string // 评论者昵称
	PostTitle     string // 文章标题
	CommentText   string // 评论内容
}

// SendCommentNotification 发送新评论通知邮件
func (c *Client) SendCommentNotification(from string, to string, data CommentNotificationData) error {
	tmpl, err := NewTemplate(CommentNotificationTemplate)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("【Marginalia】《%s》有新评论", data.PostTitle)
	return c.SendWithTemplate(from, to, subject, tmpl, data)
}

// ContactMessageTemplate 联系表单邮件模板
const ContactMessageTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .meta { color: #666; font-size: 14px; margin-bottom: 16px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>收到新的联系消息</h1>
        </div>
        <div class="content">
            <div class="meta">
                <p>姓名：{{.Name}}</p>
                <p>邮箱：{{.Email}}</p>
                {{if .Phone}}<p>电话：{{.Phone}}</p>{{end}}
            </div>
            <p>{{.Body}}</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复。</p>
        </div>
    </div>
</body>
</html>
`

// ContactMessageData 联系表单模板数据
type ContactMessageData struct {
	Name  string // 来信人姓名
	Email string // 来信人邮箱
	Phone string // 来信人电话（可选）
	Body  string // 消息正文
}

// SendContactMessage 发送联系表单邮件
func (c *Client) SendContactMessage(from string, to string, data ContactMessageData) error {
	tmpl, err := NewTemplate(ContactMessageTemplate)
	if err != nil {
		return err
	}

	return c.SendWithTemplate(from, to, "【Marginalia】新的联系消息", tmpl, data)
}
