package session

import "io"

// SendAll writes all of data to w, retrying from the current
// offset whenever the writer accepts fewer bytes than asked. On
// error the number of bytes already on the wire is unspecified
// beyond being less than len(data).
func SendAll(w io.Writer, data []byte) error {
	for sent := 0; sent < len(data); {
		n, err := w.Write(data[sent:])
		if err != nil {
			return err
		}
		sent += n
	}
	return nil
}
