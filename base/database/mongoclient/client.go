package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/bnsapi/base/log"
)

const (
	mgSocketTimeout  = 60 * time.Second
	mgConnectTimeout = 10 * time.Second
)

// Client wraps mongo.Client together with the database the records live in
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient returns MongoDB connection client if connected successfully, or it will trigger panic
func MustConnectMongoClient(uri, authDBName, dbName string, ssl bool, poolSizeMultiplier float64) *Client {
	cli, err := ConnectMongoClient(uri, authDBName, dbName, ssl, poolSizeMultiplier)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient connects a client reading from secondaries when they are available
func ConnectMongoClient(uri, authDBName, dbName string, ssl bool, poolSizeMultiplier float64) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mgConnectTimeout)
	defer cancel()

	connSetting, err := connstring.Parse(uri)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"dbName": dbName,
			"err":    err,
		}).Error("fail to parse connstring")
		return nil, err
	}

	clientOpts := options.Client()
	clientOpts.ApplyURI(uri)
	clientOpts.SetSocketTimeout(mgSocketTimeout)
	clientOpts.SetReadPreference(readpref.SecondaryPreferred())

	// If AuthSource is not set in connstring, set it to authDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              authDBName,
		})
	}

	// records are read once at start up, a small pool per host is enough
	poolSize := int(float64(runtime.NumCPU()) * poolSizeMultiplier)
	if hosts := len(connSetting.Hosts); hosts > 0 {
		poolSize = (poolSize + hosts - 1) / hosts
	}
	if poolSize < 1 {
		poolSize = 1
	}
	clientOpts.SetMaxPoolSize(uint64(poolSize))

	if ssl {
		clientOpts.SetTLSConfig(&tls.Config{})
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     dbName,
			"err":        err,
		}).Error("fail to connect mongo db")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.SecondaryPreferred()); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     dbName,
			"err":        err,
		}).Error("fail to ping mongo db")
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"db":         dbName,
		"poolSize":   poolSize,
	}).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: dbName,
	}, nil
}
