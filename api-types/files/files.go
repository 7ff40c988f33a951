package files

// ListRequest is the body of POST /get_project_files.
type ListRequest struct {
	Path string `json:"path"`
}

type File struct {
	Path  string `json:"_path"`
	Size  int64  `json:"_file_size"`
	IsDir bool   `json:"_is_dir"`
}

func (f File) Equal(o File) bool {
	return f == o
}

// Mime returns "inode/directory" for directories, and empty string for files.
func (f File) Mime() string {
	if f.IsDir {
		return "inode/directory"
	}
	return ""
}

// List is the response of POST /get_project_files.
type List struct {
	Files []File `json:"_files"`
}
