package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Charitie/DevConnector/config"
	"github.com/Charitie/DevConnector/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	db          *mongo.Database
	redisClient *redis.Client
	gcsClient   *storage.Client
	esClient    *elasticsearch.Client

	tokens *helpers.TokenManager

	rabbitPub *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)          { cfg = c }
func GetConfig() *config.Config           { return cfg }
func SetLogger(l *logrus.Logger)          { logger = l }
func GetLogger() *logrus.Logger           { return logger }
func SetMongo(d *mongo.Database)          { db = d }
func GetMongo() *mongo.Database           { return db }
func SetRedis(r *redis.Client)            { redisClient = r }
func GetRedis() *redis.Client             { return redisClient }
func SetGCS(s *storage.Client)            { gcsClient = s }
func GetGCS() *storage.Client             { return gcsClient }
func SetES(c *elasticsearch.Client)       { esClient = c }
func GetES() *elasticsearch.Client        { return esClient }
func SetTokens(m *helpers.TokenManager)   { tokens = m }
func GetTokens() *helpers.TokenManager    { return tokens }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
