package config

type (
	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                  string
		Version              string
		BaseUrl              string
		MaxRequestsPerSecond int
		SessionStore         string
		SessionFilePath      string
		SessionKeyPrefix     string
		DiplomaBucketName    string
		EventsQueue          string
	}

	// A driver whose Host is empty is not connected.
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)
