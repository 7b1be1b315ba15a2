// Package signal synthesizes deterministic multi-tone test signals.
//
// All tones share one amplitude and one sampling grid (sample interval and
// sample count from [core.ProcessorConfig]). Frequencies are angular, so
// sample i of a tone at f is amplitude*sin(dt*i*f).
package signal
