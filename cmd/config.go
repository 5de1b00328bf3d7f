package cmd

type Config struct {
	HTTPPort               string
	StoreDriver            string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	RedisNamespace         string
	KafkaHost              string
	KafkaOrderChangedTopic string
	JWTSecret              string
}
