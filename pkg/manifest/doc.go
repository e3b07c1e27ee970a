// Package manifest loads resolution inputs from YAML files: the type
// universe, the host environment and the candidate units with their
// condition attachments. It is the declarative front-end used by the
// condor CLI; library consumers can also construct units directly against
// the engine package.
package manifest
