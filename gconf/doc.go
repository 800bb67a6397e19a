/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Every extension keeps at most one configuration object, stored under the
"_c:<package name>" key. The object is loaded from the genesis file "conf"
section when the chain starts and validated before it is written.

Not being able to get a configuration value is a critical condition for the
application and there is no recovery path for the client. Application must be
terminated and configured correctly.
*/
package gconf
