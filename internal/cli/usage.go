package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `filehash - compute and verify file digests

USAGE
  filehash [flags] <file>...
  filehash --check <list>
  filehash --list-algorithms

FLAGS
  Digest:
    -a, --algorithm <name>                 Hash algorithm (default: MD5)
    -b, --buffer-size <bytes>              Read buffer size, at least 1 (default: 4096)

  Verification:
    --expect <hex>                         Expected digest of the single <file> argument
    -c, --check <list>                     Verify "<hex>  <path>" lines from <list>

  Configuration & Output:
    --config <path>                        Path to additional config file
    -v, --verbose                          Print debug output to stderr
    --no-color                             Disable colored output
    -l, --list-algorithms                  List supported algorithms and exit

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

ALGORITHMS
  MD5 SHA-1 SHA-224 SHA-256 SHA-384 SHA-512 SHA-512/256 SHA3-256 SHA3-512
  BLAKE2B-256 BLAKE2B-512 BLAKE3 CRC32
  Names are case-insensitive; '-' and '_' are ignored (sha256 == SHA-256).

CONFIG FILES
  $XDG_CONFIG_HOME/filehash/config       Global (or ~/.config/filehash/config)
  ./.filehash                            Project
  Keys: ALGORITHM, BUFFER_SIZE, VERBOSE, NO_COLOR (KEY=VALUE, # comments)

EXIT CODES
  0   Success              Every file hashed, every expectation matched
  1   Error                Invalid arguments or configuration
  2   IOFailure            A file could not be opened or read
  3   UnsupportedAlgorithm Unknown hash algorithm
  4   Mismatch             Digest differs from the expected value

EXAMPLES
  # MD5 of a file
  filehash test.txt

  # SHA-256 with a 2 KiB buffer
  filehash -a sha256 -b 2048 image.iso

  # Fail unless the digest matches
  filehash -a blake3 --expect af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262 empty.bin

  # Verify a digest list
  filehash -a sha256 --check SHA256SUMS
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
