package models

// Artifact names.
const (
	NetPosition        = "netPosition"
	SampleClientmaster = "sampleClientmaster"
	MTD                = "mtd"
)

// ArtifactNames lists the artifacts in processing order.
var ArtifactNames = []string{NetPosition, SampleClientmaster, MTD}

// FileNames maps artifact name to its stable output file name.
var FileNames = map[string]string{
	NetPosition:        "netposition.csv",
	SampleClientmaster: "sampleClientmaster.csv",
	MTD:                "MTD.csv",
}

// Artifact is one named text output of a processing pass.
type Artifact struct {
	// Name is one of NetPosition, SampleClientmaster or MTD.
	Name string
	// FileName is the stable file name used when saving the artifact.
	FileName string
	// Content is the UTF-8 CSV text.
	Content string
}

// NewArtifact creates an artifact with the file name registered for name.
func NewArtifact(name, content string) Artifact {
	return Artifact{
		Name:     name,
		FileName: FileNames[name],
		Content:  content,
	}
}
