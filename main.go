package main

import (
	"context"
	"fmt"
	"log"

	"preorder/cache"
	"preorder/configs"
	"preorder/routes"
	"preorder/services"
	"preorder/utils"
	"preorder/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	meals, err := configs.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}
	log.Printf("catalog loaded: %d meals", len(meals))

	// ตะกร้าเก็บใน redis ถ้าตั้ง REDIS_ADDR ไว้ ไม่งั้นอยู่ใน memory อย่างเดียว
	var store cache.CartStore = cache.NopStore{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, carts stay in memory: %v", err)
		} else {
			store = cache.NewRedisStore(client, cfg.CartTTL)
		}
	}

	var channels []services.Channel
	if cfg.SESSender != "" {
		mailer, err := utils.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.SESSender)
		if err != nil {
			log.Printf("ses disabled: %v", err)
		} else {
			channels = append(channels, mailer)
		}
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Catalog:   meals,
		CartStore: store,
		Hub:       ws.NewNotificationHub(),
		Channels:  channels,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
