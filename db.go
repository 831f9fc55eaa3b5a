package studygo

type Database interface {
	Close() error
	Migrate() error
}
