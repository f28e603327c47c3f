package config

import "os"

// ActivityConfig configures the activity feed queue.
type ActivityConfig struct {
	URL     string // broker URL; empty means the feed is off
	Queue   string
	LogPath string
}

func LoadActivityConfig() ActivityConfig {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	return ActivityConfig{
		URL:     url,
		Queue:   getenv("ACTIVITY_QUEUE", "stagebook.activity"),
		LogPath: getenv("ACTIVITY_LOG", "logs/activity.log"),
	}
}
