package mailer

import (
	"context"
	"iter"
	"time"

	"golang.org/x/time/rate"
)

// Outcome 批量发送中单个收件人的结果
type Outcome struct {
	Email string
	Err   error
}

// sendInterval 两次发送之间的最小间隔，压低出站速率
const sendInterval = 100 * time.Millisecond

// NewsletterBatch 按列表顺序逐个发送同一封邮件，每个收件人产生一个 Outcome 。
// 一次只有一个在途发送；单个收件人失败不会中断批次。
// 聚合统计与进度上报由消费方完成，批次本身不关心通知方式。
// 批次一旦开始就不随请求取消，所以这里不接收外部 context 。
func NewsletterBatch(sender Sender, recipients []string, subject, content string) iter.Seq[Outcome] {
	return func(yield func(Outcome) bool) {
		// 令牌桶初始是满的：第一封立即发出，之后每 100ms 一封，
		// 最后一封之后没有多余的等待
		limiter := rate.NewLimiter(rate.Every(sendInterval), 1)
		tmpl := NewsletterTemplate(subject, content)
		ctx := context.Background()

		for _, email := range recipients {
			_ = limiter.Wait(ctx)

			err := sender.Send(ctx, Message{
				To:      email,
				Subject: tmpl.Subject,
				HTML:    tmpl.HTML,
				Text:    tmpl.Text,
			})

			if !yield(Outcome{Email: email, Err: err}) {
				return
			}
		}
	}
}
