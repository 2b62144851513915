// Project Structure Overview
/*
heyi-backend/
├── cmd/
│   ├── server/          HTTP API entry point
│   │   └── main.go
│   └── heyictl/         operator CLI: seed, rank, filter
├── internal/
│   ├── config/          env-driven configuration
│   ├── database/        gorm connection and migrations
│   ├── storage/         snapshot slots: memory, file, postgres, redis, s3
│   ├── models/          asset, price, license, notification
│   ├── catalog/         asset store, facet filter, sorting, rankings, generator
│   ├── services/        catalog, ranking, license, notification, profile, admin
│   ├── handlers/        gin handlers
│   ├── middleware/      cors, i18n, logging, rate limiting
│   ├── logging/         logrus setup and request-scoped entries
│   ├── i18n/
│   │   ├── locales/
│   │   │   ├── en.json
│   │   │   └── zh_CN.json
│   │   └── keys.go
│   ├── utils/           response envelope, pagination, validation
│   ├── router/
│   │   └── router.go
│   └── tests/           API tests
└── go.mod
*/
package heyibackend
