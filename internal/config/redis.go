package config

type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
	// Запускать ли воркер фоновых задач в этом процессе.
	RunWorker   bool `env:"ASYNQ_RUN_WORKER" envDefault:"true"`
	Concurrency int  `env:"ASYNQ_CONCURRENCY" envDefault:"4"`
}

// Enabled reports whether the shared cache and the task queue are configured.
func (r Redis) Enabled() bool {
	return r.Address != ""
}
