package novora

//go:generate mockgen --source datastore/repository.go --destination mocks/repository.go -package mocks
//go:generate mockgen --source queue/queue.go --destination mocks/queue.go -package mocks
//go:generate mockgen --source internal/pkg/limiter/limiter.go --destination mocks/limiter.go -package mocks
//go:generate mockgen --source internal/pkg/locker/locker.go --destination mocks/locker.go -package mocks
