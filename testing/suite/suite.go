package suite

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/sos-backend/internal/config"
	"github.com/rocketscienceinc/sos-backend/internal/repository/storage"
)

const (
	containerTTL = 120 // seconds
	maxWait      = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite is a throwaway Redis container plus a client built by storage.NewRedis.
type Suite struct {
	*testing.T

	// Redis is the config that reaches the container, for tests that dial it themselves.
	Redis   config.Redis
	Storage *redis.Client
}

// New starts Redis in docker and returns a flushed session store for t.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWait)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(hostConfig *docker.HostConfig) {
		hostConfig.AutoRemove = true
		hostConfig.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	// hard kill in case Purge never runs
	_ = resource.Expire(containerTTL)

	host, port, err := net.SplitHostPort(resource.GetHostPort(redisPort))
	if err != nil {
		t.Fatalf("unexpected redis address: %v", err)
	}

	conf := config.Redis{Host: host, Port: port}

	pool.MaxWait = maxWait

	// the container may not accept connections yet
	var client *redis.Client
	if err = pool.Retry(func() error {
		client, err = storage.NewRedis(ctx, conf)
		return err
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Redis:   conf,
		Storage: client,
	}
}
