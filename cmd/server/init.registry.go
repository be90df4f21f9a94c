package main

import (
	"reflect"

	"gameshop_commerce/config"
	"gameshop_commerce/core/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRegistry đăng ký database và các collection vào registry toàn cục.
// Các service tra cứu collection qua registry thay vì giữ tham chiếu trực tiếp.
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}

	// Lấy danh sách tên collection từ global.ColNames để không phải duy trì hai danh sách
	v := reflect.ValueOf(global.ColNames)
	for i := 0; i < v.NumField(); i++ {
		name := v.Field(i).String()
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
