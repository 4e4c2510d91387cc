package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
)

const (
	STORE_FILE  = "file"
	STORE_REDIS = "redis"

	RELAY_NONE   = "none"
	RELAY_LOG    = "log"
	RELAY_PUBNUB = "pubnub"
	RELAY_NATS   = "nats"
)

type Config struct {
	Addr      string        `help:"HTTP listen address" default:":8081" env:"ADDR"`
	Store     string        `help:"State backend (file or redis)" enum:"file,redis" default:"file" env:"STORE"`
	DataFile  string        `help:"State document path for the file backend" default:"data/queue.json" env:"DATA_FILE"`
	RedisAddr string        `help:"Redis address for the redis backend and relay queue" default:"localhost:6379" env:"REDIS_ADDR"`
	RedisKey  string        `help:"Redis key holding the state document" default:"counter_queue:state" env:"REDIS_KEY"`
	Seed      string        `help:"JSON (comments allowed) document used to create the initial state" env:"SEED_FILE"`
	Timezone  string        `help:"Timezone that decides when a new day starts" default:"Local" env:"TZ_NAME"`
	Heartbeat time.Duration `help:"Keep-alive interval for event streams" default:"15s" env:"SSE_HEARTBEAT"`
	Verbose   bool          `short:"v" help:"Enable verbose logging"`

	Relay      string `help:"Relay for snapshots (none, log, pubnub or nats)" enum:"none,log,pubnub,nats" default:"none" env:"RELAY"`
	RelayQueue bool   `help:"Deliver relay messages through the redis task queue" default:"true" negatable:"" env:"RELAY_QUEUE"`

	PubNub struct {
		PublishKey   string `help:"PubNub publish key" env:"PN_PUBLISH_KEY"`
		SubscribeKey string `help:"PubNub subscribe key" env:"PN_SUBSCRIBE_KEY"`
		SecretKey    string `help:"PubNub secret key" env:"PN_SECRET_KEY"`
		UUID         string `help:"PubNub user id of this server" default:"counter-queue" env:"PN_UUID"`
		UUIDSub      string `help:"PubNub user id granted read access" env:"PN_UUID_SUB"`
		Channel      string `help:"PubNub channel" default:"counter-queue" env:"PN_CHANNEL"`
		TokenTTL     int    `help:"Lifetime of relay read grants in minutes" default:"60" env:"PN_TOKEN_TTL"`
	} `embed:"" prefix:"pn-"`

	Nats struct {
		URL     string `help:"NATS server URL" default:"nats://127.0.0.1:4222" env:"NATS_URL"`
		Subject string `help:"NATS subject" default:"counter_queue.state" env:"NATS_SUBJECT"`
	} `embed:"" prefix:"nats-"`
}

// ParseConfig reads flags from args, falling back to environment variables
// and then to defaults.
func ParseConfig(args []string) (Config, error) {
	var cfg Config
	parser, err := kong.New(&cfg,
		kong.Name("counter-queue"),
		kong.Description("Multi-counter take-a-number queue server."),
	)
	if err != nil {
		return Config{}, fmt.Errorf("kong.New(): %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%v): %w", c.Timezone, err)
	}
	return loc, nil
}

// NeedsRedis reports whether any component needs a redis connection.
func (c Config) NeedsRedis() bool {
	return c.Store == STORE_REDIS || (c.Relay != RELAY_NONE && c.RelayQueue)
}
