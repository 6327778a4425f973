package config

type Config struct {
	System struct {
		IsProd                bool   `env:"IS_PROD" envDefault:"false"`                            // 是否为生产环境
		Listen                string `env:"LISTEN" envDefault:":1323"`                             // 监听地址
		DBConnectionString    string `env:"DB_CONN,required"`                                      // Postgres 数据库的连接字符串
		RedisConnectionString string `env:"REDIS_CONN,required"`                                   // Redis 数据库的连接字符串
		PublicBaseURL         string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:1323"`    // 对外访问地址，用于拼接上传文件与下载链接
		UploadsDir            string `env:"UPLOADS_DIR" envDefault:"./uploads"`                    // 上传文件的存储目录
		BookDownloadPath      string `env:"BOOK_DOWNLOAD_PATH" envDefault:"/files/art-guide.pdf"`  // 免费画册的下载路径
	}
	Security struct {
		SignatureSecretKey string `env:"SIGNATURE_SECRET_KEY,required"` // 签名密钥，用于产生 JWT ，更新会导致旧有会话失效
		AdminSetupKey      string `env:"ADMIN_SETUP_KEY,required"`      // 初始化管理员时需要提供的共享密钥
	}
	Mail struct {
		SMTPHost   string `env:"SMTP_HOST"`                                        // SMTP 服务器地址
		SMTPPort   int    `env:"SMTP_PORT"`                                        // SMTP 端口， 465 走隐式 TLS
		SMTPUser   string `env:"SMTP_USER"`                                        // SMTP 用户名
		SMTPPass   string `env:"SMTP_PASS"`                                        // SMTP 密码
		FromEmail  string `env:"SMTP_FROM_EMAIL" envDefault:"noreply@example.com"` // 发件人地址
		FromName   string `env:"SMTP_FROM_NAME" envDefault:"Atelier"`              // 发件人名称
		AdminEmail string `env:"ADMIN_EMAIL"`                                      // 接收订单通知的管理员邮箱，留空则不通知
	}
}
