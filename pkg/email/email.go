// Package email 站点通知邮件
// 博客的外发邮件只有两类：评论通知和联系表单转发，
// 都是发给站长的单收件人 HTML 邮件，这里不做通用邮件网关
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Config SMTP 配置
type Config struct {
	Host     string `koanf:"host"`     // SMTP 服务器地址，如 smtp.gmail.com
	Port     int    `koanf:"port"`     // SMTP 端口，通常 587 (STARTTLS) 或 465 (SSL)
	Username string `koanf:"username"` // 发件人邮箱
	Password string `koanf:"password"` // 邮箱密码或授权码
	UseTLS   bool   `koanf:"tls"`      // 是否强制 STARTTLS
}

// Client 通知邮件客户端
type Client struct {
	config *Config
}

func NewClient(config *Config) *Client {
	if config.Port == 0 {
		config.Port = 587
	}
	return &Client{config: config}
}

// SendHTML 发送单收件人 HTML 通知邮件
func (c *Client) SendHTML(from, to, subject, htmlBody string) error {
	if from == "" {
		return fmt.Errorf("发件人不能为空")
	}
	if to == "" {
		return fmt.Errorf("收件人不能为空")
	}
	if subject == "" {
		return fmt.Errorf("邮件主题不能为空")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	auth := smtp.PlainAuth("", c.config.Username, c.config.Password, c.config.Host)
	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)

	if c.config.UseTLS || c.config.Port == 587 {
		return c.sendWithTLS(addr, auth, from, to, []byte(b.String()))
	}
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(b.String()))
}

// sendWithTLS 明文连接后升级 STARTTLS 再发信
func (c *Client) sendWithTLS(addr string, auth smtp.Auth, from, to string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("连接 SMTP 服务器失败: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("启动 TLS 失败: %w", err)
	}
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP 认证失败: %w", err)
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("设置发件人失败: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("设置收件人失败: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("准备发送邮件内容失败: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("关闭邮件内容写入失败: %w", err)
	}

	return client.Quit()
}
