package config

// Config is populated from environment variables; see inits.Config.
type Config struct {
	System struct {
		Mode                  string   `envconfig:"MODE"`                       // production when it starts with "p"
		IsProd                bool     `ignored:"true"`                         // derived from Mode
		Listen                string   `envconfig:"LISTEN" default:":1323"`     // listen address
		DBConnectionString    string   `envconfig:"DB_CONN" required:"true"`    // Postgres connection string
		RedisConnectionString string   `envconfig:"REDIS_CONN" required:"true"` // Redis connection URL
		CORSOrigins           []string `envconfig:"CORS_ORIGINS" default:"*"`
	}
	Security struct {
		JWTSecret                 string  `envconfig:"JWT_SECRET" required:"true"`                 // rotating it invalidates every live session
		AutoActivateRegistrations bool    `envconfig:"AUTO_ACTIVATE_REGISTRATIONS" default:"true"` // whether self-registered accounts may log in before approval
		AuthRateLimit             float64 `envconfig:"AUTH_RATE_LIMIT" default:"5"`                // requests per second per IP on /api/auth
	}
	Storage struct {
		Backend        string `envconfig:"STORAGE_BACKEND" default:"disk"` // disk | s3
		UploadDir      string `envconfig:"UPLOAD_DIR" default:"./uploads"`
		UploadMaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"20971520"`
		S3Bucket       string `envconfig:"S3_BUCKET"`
		S3Region       string `envconfig:"S3_REGION" default:"us-east-1"`
		S3Endpoint     string `envconfig:"S3_ENDPOINT"` // MinIO and other S3 compatible servers
		S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
		S3SecretKey    string `envconfig:"S3_SECRET_KEY"`
	}
}
