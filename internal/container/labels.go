package container

import (
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// A single image label.
type Label struct {
	Key   string
	Value string
}

// Returns the OCI labels describing the build image.
//
// Empty values are omitted, so an unversioned or out-of-checkout build simply
// carries fewer labels.
func Labels(title, version, revision string) []Label {
	candidates := []Label{
		{Key: ocispec.AnnotationTitle, Value: title},
		{Key: ocispec.AnnotationVersion, Value: version},
		{Key: ocispec.AnnotationRevision, Value: revision},
	}

	labels := make([]Label, 0, len(candidates))
	for _, l := range candidates {
		if l.Value != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

func (l Label) String() string {
	return l.Key + "=" + l.Value
}
