package records

// Container is one line of docker ps --format '{{json .}}'.
// CreatedAt keeps docker's own string form; Ports is split on ", " and
// empty when the container publishes nothing.
type Container struct {
	ID        string
	Name      string
	Image     string
	Command   string
	State     string // "running", "exited", ...
	Status    string // human status, e.g. "Up 2 hours"
	CreatedAt string
	Ports     []string
}

// ContainerList preserves docker ps output order.
type ContainerList struct {
	Containers []Container
	Count      int
}

// Image is one line of docker images --format '{{json .}}'.
// Size keeps docker's human string; docker ps does not expose a raw
// byte count in this format.
type Image struct {
	ID         string
	Repository string
	Tag        string
	CreatedAt  string
	Size       string
}

// ImageList preserves docker images output order.
type ImageList struct {
	Images []Image
	Count  int
}
