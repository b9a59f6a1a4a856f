// Package tfr computes quadratic time-frequency distributions of discrete
// analytic signals: the Wigner-Ville distribution, its cross, pseudo and
// smoothed-pseudo variants, and the spectrogram.
//
// Every distribution is evaluated one time instant at a time. For an
// instant t the engine
//
//  1. clips the usable lag span symmetrically so that t±τ stays inside the
//     signal and ±τ stays inside the NFFT-long projection buffer,
//  2. forms the lag product x[t+τ]·conj(y[t-τ]), weighted by the lag window,
//  3. rotates it so lag 0 sits at index 0 and applies an NFFT-point DFT.
//
// The resulting column is written into column j of an NFFT × len(times)
// complex matrix. Columns are independent and are computed by a pool of
// workers that share only the read-only input signal.
//
// Because the lag product advances both indices by τ, DFT bin k of a
// Wigner-type distribution corresponds to normalised frequency k/(2·NFFT);
// Result.Freqs carries that axis.
package tfr
