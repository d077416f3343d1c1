// Package timeline holds the data of timed text tracks: cues, the tracks
// they make up and the formats the tracks are read from and written to.
//
// The interactive editor built on top of it lives in the editor package.
package timeline
