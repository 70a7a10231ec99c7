package fetch

const (
	ReasonNoProduct  = "No product data found"
	ReasonNoImageURL = "No image URL found"
)

// Result is the outcome of fetching one row: either the image was saved
// (Path, Size) or it was not and Reason says why.
type Result struct {
	Path   string
	Size   int
	Reason string
}

func Success(path string, size int) Result {
	return Result{Path: path, Size: size}
}

func Failure(reason string) Result {
	return Result{Reason: reason}
}

func (r Result) OK() bool {
	return r.Reason == ""
}
