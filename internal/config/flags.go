package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-kafka-brokers comma-separated kafka broker addresses
//	-kafka-topic default kafka topic
//	-nats-url NATS server URL for the task queue
//	-queue-subject NATS subject tasks are published on
//	-redis-address redis address for the task result backend
//	-result-ttl task result TTL (e.g., "24h")
//	-workers number of task worker goroutines
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var kafkaBrokers string
	var kafkaTopic string
	var natsURL string
	var queueSubject string
	var redisAddress string
	var resultTTL time.Duration
	var workers int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&kafkaBrokers, "kafka-brokers", "", "Comma-separated kafka broker addresses")
	flag.StringVar(&kafkaTopic, "kafka-topic", "", "Default kafka topic")
	flag.StringVar(&natsURL, "nats-url", "", "NATS server URL")
	flag.StringVar(&queueSubject, "queue-subject", "", "NATS subject for queued tasks")
	flag.StringVar(&redisAddress, "redis-address", "", "Redis address for task results")
	flag.DurationVar(&resultTTL, "result-ttl", 0, "Task result TTL (e.g., 24h)")
	flag.IntVar(&workers, "workers", 0, "Number of task worker goroutines")

	flag.Parse()

	var brokers []string
	if kafkaBrokers != "" {
		brokers = strings.Split(kafkaBrokers, ",")
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Kafka: Kafka{
			Brokers: brokers,
			Topic:   kafkaTopic,
		},
		Queue: Queue{
			NATSURL:      natsURL,
			Subject:      queueSubject,
			RedisAddress: redisAddress,
			ResultTTL:    resultTTL,
		},
		Workers: Workers{
			Concurrency: workers,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
