package repositories

// Repositories holds all the repository instances
type Repositories struct {
	ActivityRepository *ActivityRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		ActivityRepository: NewActivityRepository(),
	}
}
