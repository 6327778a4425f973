package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Message 一封待发送的邮件
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender 抽象出单封邮件的发送，测试时可以替换为桩实现
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config SMTP 凭据与发件人信息，来自环境变量
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Mailer 包装一个进程级的 SMTP 客户端，启动时构造一次，之后复用。
// 发送失败不做重试，由调用方决定如何处理。
type Mailer struct {
	client    *mail.Client
	fromEmail string
	fromName  string
}

var _ Sender = (*Mailer)(nil)

func New(cfg Config) (*Mailer, error) {
	// 凭据不全属于配置错误，直接拒绝启动
	if cfg.Host == "" || cfg.Port == 0 || cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SMTP configuration is incomplete")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Port == 465 {
		// 465 端口为隐式 TLS
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	fromEmail := cfg.FromEmail
	if fromEmail == "" {
		fromEmail = "noreply@example.com"
	}
	fromName := cfg.FromName
	if fromName == "" {
		fromName = "Atelier"
	}

	return &Mailer{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	message := mail.NewMsg()

	if err := message.FromFormat(m.fromName, m.fromEmail); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}

	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		message.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	return nil
}
