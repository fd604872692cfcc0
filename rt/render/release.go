package render

type releaser interface {
	Release()
}

// releaseStack collects GPU objects built so far so a failed constructor can
// free them, newest first.
type releaseStack []releaser

func (s *releaseStack) push(r releaser) {
	*s = append(*s, r)
}

func (s *releaseStack) release() {
	for i := len(*s) - 1; i >= 0; i-- {
		(*s)[i].Release()
	}
	*s = nil
}
