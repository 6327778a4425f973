package mailer

import (
	"fmt"
	"strings"
)

// Template 渲染完成的一封邮件
type Template struct {
	Subject string
	HTML    string
	Text    string
}

const htmlLayout = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: %s; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">%s</h1>
  </div>
  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; border: 1px solid #e0e0e0; border-top: none;">
    %s
  </div>
  <div style="text-align: center; padding: 20px; color: #999; font-size: 12px;">
    <p style="margin: 0;">© Atelier. All rights reserved.</p>
  </div>
</div>`

// WelcomeTemplate 订阅成功后的欢迎邮件
func WelcomeTemplate() Template {
	body := `<p style="color: #333;">Hello,</p>
<p style="color: #666;">Thank you for joining! You'll now receive updates about:</p>
<ul style="color: #666;">
  <li>New artworks and gallery updates</li>
  <li>Blog posts and artistic insights</li>
  <li>Exclusive shop previews and offers</li>
</ul>
<p style="color: #666;">You can unsubscribe anytime from the footer of any email we send you.</p>`

	return Template{
		Subject: "Welcome to the Atelier Newsletter!",
		HTML:    fmt.Sprintf(htmlLayout, "linear-gradient(135deg, #667eea 0%, #764ba2 100%)", "Welcome!", body),
		Text: `Welcome!

Thank you for joining! You'll now receive updates about:
- New artworks and gallery updates
- Blog posts and artistic insights
- Exclusive shop previews and offers

You can unsubscribe anytime from the footer of any email we send you.`,
	}
}

// NewsletterTemplate 把后台提交的正文套进统一的邮件框架。
// 正文由管理员编写，按 HTML 原样嵌入；纯文本版本直接使用原始正文。
func NewsletterTemplate(subject, content string) Template {
	body := fmt.Sprintf(`<div style="color: #333; font-size: 14px; line-height: 1.8;">%s</div>`, content)

	return Template{
		Subject: subject,
		HTML:    fmt.Sprintf(htmlLayout, "linear-gradient(135deg, #3b82f6 0%, #1e40af 100%)", "Latest Update", body),
		Text:    content,
	}
}

// OrderConfirmationTemplate 发给买家的下单确认
func OrderConfirmationTemplate(orderID, productTitle string, price float64) Template {
	body := fmt.Sprintf(`<p style="color: #333;">Hello,</p>
<p style="color: #666;">Thank you for your order! We've received your request and will process it shortly.</p>
<div style="background: white; border: 1px solid #e0e0e0; border-radius: 6px; padding: 20px; margin: 20px 0;">
  <p style="color: #666; margin: 0;">
    <strong>Order ID:</strong> %s<br/>
    <strong>Product:</strong> %s<br/>
    <strong>Amount:</strong> $%.2f
  </p>
</div>
<p style="color: #666;">We'll be in touch as soon as your order is on its way.</p>`, orderID, productTitle, price)

	return Template{
		Subject: fmt.Sprintf("Order Confirmation - %s", orderID),
		HTML:    fmt.Sprintf(htmlLayout, "linear-gradient(135deg, #10b981 0%, #059669 100%)", "Order Confirmed!", body),
		Text: fmt.Sprintf(`Order Confirmed!

Thank you for your order! We've received your request and will process it shortly.

Order ID: %s
Product: %s
Amount: $%.2f

We'll be in touch as soon as your order is on its way.`, orderID, productTitle, price),
	}
}

// OrderNotificationTemplate 发给管理员的新订单通知
func OrderNotificationTemplate(orderID, name, email, productTitle string, price float64, message string) Template {
	body := fmt.Sprintf(`<p><strong>Order ID:</strong> %s</p>
<p><strong>Customer Name:</strong> %s</p>
<p><strong>Customer Email:</strong> %s</p>
<p><strong>Product:</strong> %s</p>
<p><strong>Price:</strong> $%.2f</p>
<hr style="margin: 20px 0; border: none; border-top: 1px solid #e0e0e0;">
<p><strong>Message:</strong></p>
<p>%s</p>`, orderID, name, email, productTitle, price, strings.ReplaceAll(message, "\n", "<br>"))

	return Template{
		Subject: fmt.Sprintf("New Order Received - %s", orderID),
		HTML:    fmt.Sprintf(htmlLayout, "linear-gradient(135deg, #3b82f6 0%, #1e40af 100%)", "New Order", body),
		Text: fmt.Sprintf(`New Order Notification

Order ID: %s
Customer: %s
Email: %s
Product: %s
Price: $%.2f

Message:
%s`, orderID, name, email, productTitle, price, message),
	}
}

// BookDownloadTemplate 免费画册的下载邮件
func BookDownloadTemplate(downloadLink string) Template {
	body := fmt.Sprintf(`<p style="color: #333;">Hello,</p>
<p style="color: #666;">Thank you for requesting our free art guide! Your download is ready.</p>
<div style="margin: 30px 0; text-align: center;">
  <a href="%s" style="display: inline-block; background: #f59e0b; color: white; padding: 14px 32px; text-decoration: none; border-radius: 6px; font-weight: bold;">Download Your Guide</a>
</div>
<p style="color: #666;">If the button doesn't work, copy this link into your browser:<br/><code>%s</code></p>`, downloadLink, downloadLink)

	return Template{
		Subject: "Your Free Art Guide is Ready!",
		HTML:    fmt.Sprintf(htmlLayout, "linear-gradient(135deg, #f59e0b 0%, #d97706 100%)", "Your Guide is Ready!", body),
		Text: fmt.Sprintf(`Your Free Art Guide is Ready!

Thank you for requesting our free art guide! Your download is ready.

Download: %s`, downloadLink),
	}
}
