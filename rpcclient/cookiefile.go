// Copyright (c) 2017 The Namecoin developers
// Copyright (c) 2019 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// cookieRecheckInterval is how long cached cookie credentials are trusted
// before the file is examined again.
const cookieRecheckInterval = 30 * time.Second

// errMalformedCookie is returned for a cookie file that does not hold a
// user:password pair.
var errMalformedCookie = errors.New("malformed cookie file")

func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}

	s := strings.TrimSpace(string(b))
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		err = errMalformedCookie
		return
	}

	username, password = parts[0], parts[1]
	return
}

// cookieRetriever returns a function reporting the credentials held in the
// cookie file at path.  The node rewrites the file on every restart, so it is
// reread whenever its modification time changes.  The returned function is
// safe for concurrent use.
func cookieRetriever(path string) func() (username, password string, err error) {
	var (
		mtx           sync.Mutex
		lastCheckTime time.Time
		lastModTime   time.Time

		curUsername, curPassword string
		curError                 error
	)

	doUpdate := func() {
		if !lastCheckTime.IsZero() &&
			time.Now().Before(lastCheckTime.Add(cookieRecheckInterval)) {

			return
		}

		lastCheckTime = time.Now()

		st, err := os.Stat(path)
		if err != nil {
			curError = err
			return
		}

		modTime := st.ModTime()
		if !modTime.Equal(lastModTime) {
			lastModTime = modTime
			curUsername, curPassword, curError = readCookieFile(path)
		}
	}

	return func() (username, password string, err error) {
		mtx.Lock()
		defer mtx.Unlock()

		doUpdate()
		return curUsername, curPassword, curError
	}
}
