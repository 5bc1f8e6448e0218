// Package utils holds small helpers shared by the answerkit packages: a
// generic [Ptr] constructor, string previews for log attributes, and a
// [Timer] for measuring operation latency.
package utils
