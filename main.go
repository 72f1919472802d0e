package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/flowport/flowport/config"
	"github.com/flowport/flowport/persistence"
	redisstore "github.com/flowport/flowport/persistence/redis"
	"github.com/flowport/flowport/rest"
	"github.com/flowport/flowport/service"
	"github.com/flowport/flowport/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type cfg struct {
	config.Config
}
type cli struct {
	cfg cfg
}

func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("config-file", "", "Path to config file.")
	cmd.Flags().Int("http-port", 8080, "http port for rest endpoints")
	cmd.Flags().String("storage-impl", "memory", "implementation of workflow storage")
	cmd.Flags().String("redis-addr", "localhost:6379", "comma separated list of redis host:port")
	cmd.Flags().String("namespace", "flowport", "namespace used in storage")
	cmd.Flags().Int("cache-capacity", 64, "validation result cache capacity")
	return viper.BindPFlags(cmd.Flags())
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	var err error

	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	viper.SetConfigFile(configFile)

	if err = viper.ReadInConfig(); err != nil {
		// it's ok if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	c.cfg.HttpPort = viper.GetInt("http-port")
	c.cfg.StorageType = config.StorageType(viper.GetString("storage-impl"))
	c.cfg.RedisConfig.Addrs = strings.Split(viper.GetString("redis-addr"), ",")
	c.cfg.RedisConfig.Namespace = viper.GetString("namespace")
	c.cfg.CacheCapacity = viper.GetInt("cache-capacity")
	return nil
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	var storage persistence.WorkflowStorage
	switch c.cfg.StorageType {
	case config.STORAGE_TYPE_REDIS:
		storage = redisstore.NewRedisWorkflowStorage(redisstore.Config{
			Addrs:     c.cfg.RedisConfig.Addrs,
			Namespace: c.cfg.RedisConfig.Namespace,
		})
	default:
		storage = persistence.NewInMemWorkflowStorage()
	}
	cache := validate.NewResultCache(c.cfg.CacheCapacity)
	exchangeService := service.NewExchangeService(cache, nil)
	server, err := rest.NewServer(c.cfg.HttpPort, exchangeService, storage)
	if err != nil {
		return err
	}
	go func() {
		if err := server.Start(); err != nil {
			log.Println(err)
		}
	}()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	return server.Stop()
}

func main() {
	cli := &cli{}

	cmd := &cobra.Command{
		Use:     "flowport",
		PreRunE: cli.setupConfig,
		RunE:    cli.run,
	}

	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
