package env

import (
	"os"
)

// PodName example: k8ssta-bnsapi-main-6868d88fbd-bz8zv, falls back to the hostname outside k8s
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	name, _ := os.Hostname()
	return name
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}
