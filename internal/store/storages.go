package store

// Storages bundles every repository the service layer depends on.
type Storages struct {
	Profiles     ProfileRepository
	Projects     ProjectRepository
	DemoProjects ProjectRepository
}

// NewStorages wires the Postgres-backed repositories plus the in-memory demo
// project store onto one shared database handle.
func NewStorages(db *DB, demoProjectLimit int) *Storages {
	return &Storages{
		Profiles:     NewProfileRepository(db),
		Projects:     NewProjectRepository(db),
		DemoProjects: NewDemoProjectStore(demoProjectLimit),
	}
}
