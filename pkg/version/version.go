package version

var (
	// Git SHA Value will be set during build,
	// go build -ldflags "-X github.com/selectdb/design_patterns/pkg/version.GitTagSha=$(git rev-parse HEAD)"
	GitTagSha = "Git tag sha: Not provided, set it with -ldflags"
)

func GetVersion() string {
	return GitTagSha
}
