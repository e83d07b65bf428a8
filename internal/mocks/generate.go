package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/bet --output domain/bet --outpkg betmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/week --output domain/week --outpkg weekmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/league --output domain/league --outpkg leaguemock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/game --output domain/game --outpkg gamemock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CatalogProvider --dir ../domain/player --output domain/player --outpkg playermock --filename catalog_provider_mock.go
