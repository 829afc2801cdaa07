// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var certificate struct {
	sync.Once
	cert []byte
	key  []byte
}

func makeCertificate() {
	certificate.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("swapmeet test", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificate.cert = cert
		certificate.key = key
	})
}

// Certificate - PEM encoded self signed certificate for TLS tests
func Certificate() string {
	makeCertificate()
	return string(certificate.cert)
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	makeCertificate()
	return string(certificate.key)
}
