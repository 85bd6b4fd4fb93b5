// Package config loads the optional HCL configuration file. The file can
// override the catalog API endpoint, log level and format, and the
// indicator repaint interval; environment variables are available inside
// it as env.<NAME>.
package config
