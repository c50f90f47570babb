package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	Vote      VoteConfig      `mapstructure:"vote"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Geo       GeoConfig       `mapstructure:"geo"`
	JWT       JWTConfig       `mapstructure:"jwt"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 远程日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// VoteConfig 投票链路配置
type VoteConfig struct {
	DedupWindow int `mapstructure:"dedup_window"` // 秒，重复投票判定窗口
	RateLimit   int `mapstructure:"rate_limit"`   // 窗口内最大请求数
	RateWindow  int `mapstructure:"rate_window"`  // 秒，限流窗口大小
}

// AnalyticsConfig 聚合任务配置
type AnalyticsConfig struct {
	Schedule string `mapstructure:"schedule"`
	PageSize int    `mapstructure:"page_size"`
	Epoch    string `mapstructure:"epoch"` // all 周期的起始日期，YYYY-MM-DD
}

type KafkaConfig struct {
	Enable  bool       `mapstructure:"enable"`
	Brokers []string   `mapstructure:"brokers"`
	Topic   string     `mapstructure:"topic"`
	Sasl    SaslConfig `mapstructure:"sasl"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// GeoConfig IP 归属地查询配置
type GeoConfig struct {
	Enable  bool   `mapstructure:"enable"`
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // 毫秒
}

// JWTConfig 身份解析配置，只做校验不做签发
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}
